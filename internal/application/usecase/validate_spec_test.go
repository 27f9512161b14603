package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/diillson/wlan-autoassign-go/internal/domain/entity"
	"github.com/diillson/wlan-autoassign-go/internal/shared/types"
)

func TestValidateServiceSpec(t *testing.T) {
	vlan := func(n int) *int { return &n }

	tests := []struct {
		name    string
		mutate  func(*entity.ServiceSpec)
		wantMsg string
	}{
		{name: "valid", mutate: func(*entity.ServiceSpec) {}},
		{
			name: "open network without passphrase",
			mutate: func(s *entity.ServiceSpec) {
				s.Security = entity.SecurityOpen
				s.Passphrase = ""
			},
		},
		{name: "valid vlan", mutate: func(s *entity.ServiceSpec) { s.VLANID = vlan(100) }},
		{name: "missing name", mutate: func(s *entity.ServiceSpec) { s.Name = "" }, wantMsg: "name is required"},
		{
			name:    "missing passphrase",
			mutate:  func(s *entity.ServiceSpec) { s.Passphrase = "" },
			wantMsg: "passphrase is required unless security is open",
		},
		{
			name:    "short passphrase",
			mutate:  func(s *entity.ServiceSpec) { s.Passphrase = "short" },
			wantMsg: "passphrase must be at least 8",
		},
		{
			name:    "unknown band",
			mutate:  func(s *entity.ServiceSpec) { s.Band = "60GHz" },
			wantMsg: "band must be one of",
		},
		{
			name:    "vlan out of range",
			mutate:  func(s *entity.ServiceSpec) { s.VLANID = vlan(5000) },
			wantMsg: "vlanid must be at most 4094",
		},
		{
			name:    "no sites",
			mutate:  func(s *entity.ServiceSpec) { s.Sites = nil },
			wantMsg: "at least one site must be selected",
		},
		{
			name:    "blank site id",
			mutate:  func(s *entity.ServiceSpec) { s.Sites = []string{"s1", ""} },
			wantMsg: "is required",
		},
	}

	v := newSpecValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := validSpec("s1")
			tt.mutate(&spec)

			err := validateServiceSpec(v, spec)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, types.ErrInvalidServiceSpec)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
