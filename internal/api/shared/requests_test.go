package shared

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testPayload struct {
	Name *string `json:"name" validate:"required"`
}

type selfValidating struct {
	called bool
}

func (s *selfValidating) Validate() error {
	s.called = true
	return nil
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantErr  bool
		wantName string
	}{
		{name: "valid_object", body: `{"name":"x"}`, wantName: "x"},
		{name: "empty_body", body: ``},
		{name: "null_body", body: `null`},
		{name: "malformed", body: `{"name":`, wantErr: true},
		{name: "wrong_type", body: `{"name":5}`, wantErr: true},
		{name: "array", body: `[1,2]`, wantErr: true},
		{name: "trailing_garbage", body: `{"name":"x"} trailing`, wantErr: true},
		{name: "two_objects", body: `{"name":"x"}{"name":"y"}`, wantErr: true},
		{name: "trailing_whitespace", body: "{\"name\":\"x\"}\n  ", wantName: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var p testPayload

			err := DecodeJSON(req, &p)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.wantName != "" {
				if assert.NotNil(t, p.Name) {
					assert.Equal(t, tt.wantName, *p.Name)
				}
			} else {
				assert.Nil(t, p.Name)
			}
		})
	}
}

func TestDecodeJSON_BodyTooLarge(t *testing.T) {
	body := `{"name":"` + strings.Repeat("a", MaxRequestBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	var p testPayload

	assert.Error(t, DecodeJSON(req, &p))
}

func TestValidateRequest(t *testing.T) {
	name := ""
	assert.NoError(t, ValidateRequest(testPayload{Name: &name}), "present but empty passes required on a pointer")
	assert.Error(t, ValidateRequest(testPayload{}))

	sv := &selfValidating{}
	assert.NoError(t, ValidateRequest(sv))
	assert.True(t, sv.called)
}
