package config

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vidping/vidping/color"
	"github.com/vidping/vidping/constant"
	"github.com/vidping/vidping/key"
	"github.com/vidping/vidping/style"
)

// Field is a configuration key with its default value and a description.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Default holds every known configuration field by key.
var Default = make(map[string]Field)

// EnvExposed lists the keys bound to environment variables.
var EnvExposed []string

func register(k string, v any, desc string) {
	if _, exists := Default[k]; exists {
		panic("duplicate config key: " + k)
	}

	Default[k] = Field{Key: k, Value: v, Description: desc}
	EnvExposed = append(EnvExposed, k)
}

func init() {
	register(key.StrategyPositionInterval, 50, "Period of the playhead position poll, in milliseconds")

	register(key.PingInterval, 1000, "Period between two sampled pings, in milliseconds")
	register(key.PingRequireReady, true, "Only sample pings once the player rendered its first frame")

	register(key.ReplaySpeed, 1.0, "Speed factor applied to recorded session timings.\n2 plays twice as fast, 0 applies every entry at once")
	register(key.ReplayQueryLatency, 20, "Simulated latency of player queries during replay, in milliseconds")

	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, plain, squares")
	register(key.CliColored, true, "Enable colored CLI output")

	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
}

// Env returns the environment variable overriding this field.
func (f *Field) Env() string {
	return strings.ToUpper(constant.App + "_" + EnvKeyReplacer.Replace(f.Key))
}

// Pretty renders the field with its current value for the config info command.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// MarshalJSON includes the current value next to the default one.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Env         string `json:"env"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Env:         f.Env(),
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case float64:
		return "float"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// highlight colors a value by its type.
func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		if value {
			return style.Fg(color.Green)(strconv.FormatBool(value))
		}
		return style.Fg(color.Red)(strconv.FormatBool(value))
	case string:
		return style.Fg(color.Yellow)(strconv.Quote(value))
	default:
		return style.Fg(color.Cyan)(fmt.Sprint(value))
	}
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":  style.Faint,
	"purple": style.Fg(color.Purple),
	"blue":   style.Fg(color.Blue),
	"hl":     highlight,
	"value":  viper.Get,
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl .Value }}
{{ blue "Type:" }}    {{ .Type }}`))

// Type is the type name shown by Pretty.
func (f *Field) Type() string {
	return f.typeName()
}
