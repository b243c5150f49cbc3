// Package colour provides the style-variable export consumed by rendering
// layers.
package colour

import (
	"fmt"
	"strings"
)

// StyleVariables flattens a harmonization result and optional gradient
// stops into a name→value mapping suitable for a rendering layer's shared
// style-variable store. How the mapping is consumed (CSS variables, shader
// uniforms) is the rendering collaborator's concern.
//
// Keys: "accent", "accent-rgb", "colour-<role>" per processed role (role
// lowercased, underscores become dashes), "gradient-stop-<n>" per stop and
// "gradient-stops" as a comma-joined list.
func StyleVariables(result *HarmonizedResult, gradient []RGB) map[string]string {
	vars := make(map[string]string)
	if result != nil {
		vars["accent"] = result.AccentHex
		vars["accent-rgb"] = fmt.Sprintf("%d, %d, %d", result.AccentRGB.R, result.AccentRGB.G, result.AccentRGB.B)
		for role, hex := range result.ProcessedColours {
			vars["colour-"+styleVarName(role)] = hex
		}
	}

	if len(gradient) > 0 {
		hexes := make([]string, len(gradient))
		for i, stop := range gradient {
			hexes[i] = stop.Hex()
			vars[fmt.Sprintf("gradient-stop-%d", i)] = hexes[i]
		}
		vars["gradient-stops"] = strings.Join(hexes, ", ")
	}

	return vars
}

// styleVarName normalises a role name for use in a style-variable key.
func styleVarName(role string) string {
	return strings.ReplaceAll(strings.ToLower(role), "_", "-")
}
