package validation

import (
	"encoding/json"
	"testing"
)

func TestValidateStructAndErrorsToJson(t *testing.T) {
	type Input struct {
		Name string `validate:"required"                    json:"name"`
		Kind string `validate:"required,oneof=local cloud_drive" json:"backend_kind"`
	}

	tests := []struct {
		name        string
		in          Input
		wantErr     bool
		wantJsonMap map[string]string
	}{
		{
			name:    "success",
			in:      Input{Name: "local-disk", Kind: "local"},
			wantErr: false,
		},
		{
			name:    "missing name",
			in:      Input{Name: "", Kind: "cloud_drive"},
			wantErr: true,
			wantJsonMap: map[string]string{
				"name": "required",
			},
		},
		{
			name:    "unknown backend kind",
			in:      Input{Name: "x", Kind: "s3"},
			wantErr: true,
			wantJsonMap: map[string]string{
				"backend_kind": "oneof",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateStruct() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}

			js, jerr := ErrorsToJson(err)
			if jerr != nil {
				t.Fatalf("ErrorsToJson() error = %v", jerr)
			}
			var got map[string]string
			if err := json.Unmarshal([]byte(js), &got); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			for field, tag := range tt.wantJsonMap {
				if got[field] != tag {
					t.Errorf("field %q: got %q, want %q", field, got[field], tag)
				}
			}
		})
	}
}
