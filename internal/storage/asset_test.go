package storage

import (
	"fmt"
	"strings"
	"testing"
)

// testSpec is a minimal ValidatingSpec for exercising the store.
type testSpec struct {
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}

func (s *testSpec) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

func TestAsset_Validate(t *testing.T) {
	tests := map[string]struct {
		asset   Asset[*testSpec]
		expErrs []string
	}{
		"valid asset": {
			asset: Asset[*testSpec]{
				Version:    1,
				Identifier: "scout",
				Spec:       &testSpec{Name: "Scout", Cost: 50},
			},
		},
		"version not set": {
			asset: Asset[*testSpec]{
				Identifier: "scout",
				Spec:       &testSpec{Name: "Scout"},
			},
			expErrs: []string{"version must be set"},
		},
		"empty identifier": {
			asset: Asset[*testSpec]{
				Version: 1,
				Spec:    &testSpec{Name: "Scout"},
			},
			expErrs: []string{"id must be non-empty and alphanumeric"},
		},
		"identifier with spaces": {
			asset: Asset[*testSpec]{
				Version:    1,
				Identifier: "heavy lancer",
				Spec:       &testSpec{Name: "Lancer"},
			},
			expErrs: []string{"id must be non-empty and alphanumeric"},
		},
		"identifier with hyphen is valid": {
			asset: Asset[*testSpec]{
				Version:    1,
				Identifier: "heavy-lancer-2",
				Spec:       &testSpec{Name: "Lancer"},
			},
		},
		"invalid spec": {
			asset: Asset[*testSpec]{
				Version:    1,
				Identifier: "scout",
				Spec:       &testSpec{},
			},
			expErrs: []string{"name is required"},
		},
		"multiple errors": {
			asset: Asset[*testSpec]{
				Spec: &testSpec{},
			},
			expErrs: []string{
				"version must be set",
				"id must be non-empty and alphanumeric",
				"name is required",
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.asset.Validate()

			if len(tt.expErrs) == 0 {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}

			if err == nil {
				t.Errorf("expected errors %v, got nil", tt.expErrs)
				return
			}

			for _, e := range tt.expErrs {
				if !strings.Contains(err.Error(), e) {
					t.Errorf("error %q does not contain %q", err.Error(), e)
				}
			}
		})
	}
}
