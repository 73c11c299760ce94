package demo

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// templateFuncs provides utility functions for the report templates.
var templateFuncs = sprig.TxtFuncMap()

const setupTemplate = `Game initialized with {{ .PlayerCount }} players
Sun(s) in system: {{ .SunCount }}
{{ range .Players }}
Player {{ .Index }}: {{ .Name }} ({{ .Faction }})
  Starting Solarium: {{ printf "%.1f" .Solarium }} Sol
  Stellar Forge: {{ .HasForge }}
  Solar Mirrors: {{ .MirrorCount }}
  Forge Position: ({{ printf "%.0f" .ForgeX }}, {{ printf "%.0f" .ForgeY }})
{{ end }}`

const generationTemplate = `Testing resource generation for {{ .Name }}
Initial Solarium: {{ printf "%.1f" .Initial }} Sol

Simulating {{ printf "%.0f" .Seconds }} seconds of gameplay...
Final Solarium: {{ printf "%.1f" .Final }} Sol
Generated: {{ printf "%.1f" (subf .Final .Initial) }} Sol in {{ printf "%.0f" .Seconds }} seconds

Solar Mirror Status:
{{ range .Mirrors }}  Mirror {{ .Index }}: Light={{ .Light }}, Forge Connection={{ .Forge }}, Efficiency={{ printf "%.0f%%" (mulf .Efficiency 100.0) }}
{{ end }}`

const lightTemplate = `Key Mechanics:
1. Solar Mirrors must have line-of-sight to a Sun
2. Solar Mirrors must have line-of-sight to the Stellar Forge
3. When both conditions are met, Solarium is generated
4. Units can only be produced when Forge receives light

Stellar Forge Status for {{ .Name }}:
  Receiving Light: {{ .LightReceived }}
  Can Produce Units: {{ .CanProduce }}
  Health: {{ printf "%.0f" .Health }}
`

const factionsTemplate = `Three playable factions with unique characteristics:
{{ range .Factions }}
* {{ upper .Name }}
   Theme: {{ .Theme }}
   Bonuses:
{{- range .Bonuses }}
     - {{ . }}
{{- end }}
{{ end }}`

const victoryTemplate = `Victory is achieved by destroying the enemy's Stellar Forge

Current game state:
{{ range .Players }}  {{ .Name }}: {{ if .Defeated }}Defeated{{ else }}Active{{ end }} (Forge HP: {{ printf "%.0f" .ForgeHealth }})
{{ end }}
{{ if .Winner }}{{ .Winner }} has won the game!{{ else }}Battle continues...{{ end }}
`

// render expands one report template against its data.
func render(tmplStr string, data any) (string, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}
