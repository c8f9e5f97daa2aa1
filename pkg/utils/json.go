package utils

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson serializa qualquer valor (ou []byte já em JSON) com indentação
func PrettyJson(in any) (string, error) {
	buffer, ok := in.([]byte)
	if !ok {
		var err error
		buffer, err = json.Marshal(in)
		if err != nil {
			return "", err
		}
	}

	var out bytes.Buffer
	if err := jsonIndent(&out, buffer); err != nil {
		return "", err
	}

	return out.String(), nil
}

func jsonIndent(out *bytes.Buffer, buffer []byte) error {
	var v any
	if err := json.Unmarshal(buffer, &v); err != nil {
		return err
	}

	indented, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	out.Write(indented)
	return nil
}
