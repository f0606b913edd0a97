package parser

import (
	"encoding/json"
	"os"
)

func ParseJSON(path string) (*YWorkspace, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseJSONBytes(b)
}

func ParseJSONBytes(b []byte) (*YWorkspace, error) {
	var w YWorkspace
	if err := json.Unmarshal(b, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func ParseJSONString(s string) (*YWorkspace, error) {
	return ParseJSONBytes([]byte(s))
}
