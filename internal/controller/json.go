package controller

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"

	m "gooze.dev/pkg/viewmock/internal/model"
)

func renderJSON(reports []m.Report) (string, error) {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(reports, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode reports: %w", err)
	}

	return string(data) + "\n", nil
}
