package utils

import (
	"bytes"
	stdjson "encoding/json"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson serializa com indentação de dois espaços. O MarshalIndent do
// jsoniter desalinha mapas aninhados, então a indentação é refeita sobre a
// saída compacta.
func PrettyJson(in any) (string, error) {
	compact, err := json.Marshal(in)
	if err != nil {
		return "", err
	}

	var buffer bytes.Buffer
	if err := stdjson.Indent(&buffer, compact, "", "  "); err != nil {
		return "", err
	}
	return buffer.String(), nil
}
