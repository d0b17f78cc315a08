package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestConversionError(t *testing.T) {
	var err error = &ConversionError{Type: "departments", Name: "Unknown"}
	if !errors.Is(err, ErrConversionFailure) {
		t.Error("ConversionError 应包装 ErrConversionFailure")
	}
	if err.Error() != `departments: 无法解析名称 "Unknown"` {
		t.Errorf("错误信息不符: %s", err.Error())
	}

	wrapped := fmt.Errorf("helper: %w", &ConversionError{Type: "rooms", ID: 42})
	var convErr *ConversionError
	if !errors.As(wrapped, &convErr) {
		t.Fatal("errors.As 应取到 ConversionError")
	}
	if convErr.ID != 42 {
		t.Errorf("期望 ID=42，实际=%d", convErr.ID)
	}
}
