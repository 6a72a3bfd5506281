package version

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"k8s.io/utils/ptr"
)

func TestConfigIsThreeDigitBranch(t *testing.T) {
	tests := []struct {
		devType  string
		expected bool
	}{
		{"3db", true},
		{"3DB", true},
		{"3Db", true},
		{"", false},
		{"regex", false},
		{" 3db", false},
	}

	for _, tt := range tests {
		t.Run(tt.devType, func(t *testing.T) {
			assert.Equal(t, tt.expected, Config{DevVersionType: tt.devType}.IsThreeDigitBranch())
		})
	}
}

func TestConfigIsEmpty(t *testing.T) {
	assert.True(t, Config{}.IsEmpty())
	assert.True(t, Config{DevVersionType: "other", DevVersionGroup: 2}.IsEmpty())
	assert.False(t, Config{DevVersionType: "3db"}.IsEmpty())
	assert.False(t, Config{DevVersionRegex: `(\d+)`}.IsEmpty())
	assert.False(t, Config{ReleaseVersionRegex: `(\d+)`}.IsEmpty())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "empty config",
			cfg:  Config{},
		},
		{
			name: "three digit branch ignores dev rule",
			cfg:  Config{DevVersionType: "3db", DevVersionRegex: `(`, DevVersionGroup: 0},
		},
		{
			name: "valid dev and release rules",
			cfg: Config{
				DevVersionRegex:           `(\d+)\.(\d+)`,
				DevVersionGroup:           2,
				ReleaseVersionRegex:       `(\d+)\.(\d+)(-SNAPSHOT)`,
				ReleaseVersionGroup:       3,
				ReleaseVersionReplacement: ptr.To(""),
			},
		},
		{
			name:    "dev regex does not compile",
			cfg:     Config{DevVersionRegex: `(\d+`, DevVersionGroup: 1},
			wantErr: true,
		},
		{
			name:    "dev group below one",
			cfg:     Config{DevVersionRegex: `(\d+)`, DevVersionGroup: 0},
			wantErr: true,
		},
		{
			name:    "release group above group count",
			cfg:     Config{ReleaseVersionRegex: `(\d+)\.(\d+)`, ReleaseVersionGroup: 3},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidVersion))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestConfigValidatePerRule(t *testing.T) {
	brokenDev := Config{
		DevVersionRegex:     `(\d+`,
		DevVersionGroup:     1,
		ReleaseVersionRegex: `(\d+)`,
		ReleaseVersionGroup: 1,
	}
	assert.NoError(t, brokenDev.ValidateRelease())
	assert.ErrorIs(t, brokenDev.ValidateDevelopment(), ErrInvalidVersion)
	assert.ErrorIs(t, brokenDev.Validate(), ErrInvalidVersion)

	brokenRelease := Config{
		DevVersionType:      TypeThreeDigitBranch,
		ReleaseVersionRegex: `(\d+)`,
		ReleaseVersionGroup: 2,
	}
	assert.NoError(t, brokenRelease.ValidateDevelopment())
	assert.ErrorIs(t, brokenRelease.ValidateRelease(), ErrInvalidVersion)
	assert.ErrorIs(t, brokenRelease.Validate(), ErrInvalidVersion)
}

func TestConfigYAML(t *testing.T) {
	data := []byte(`
devVersionRegex: '(\d+)\.(\d+)\.(\d+)(-SNAPSHOT)?'
devVersionGroup: 2
releaseVersionRegex: '(\d+)\.(\d+)\.(\d+)(-SNAPSHOT)'
releaseVersionGroup: 4
releaseVersionReplacement: ""
`)

	var cfg Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))

	assert.Equal(t, `(\d+)\.(\d+)\.(\d+)(-SNAPSHOT)?`, cfg.DevVersionRegex)
	assert.Equal(t, 2, cfg.DevVersionGroup)
	assert.Nil(t, cfg.DevVersionReplacement)
	require.NotNil(t, cfg.ReleaseVersionReplacement)
	assert.Equal(t, "", *cfg.ReleaseVersionReplacement)

	next, ok, err := GenerateReleaseVersion(cfg, "1.4.0-SNAPSHOT", false)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1.4.0", next)
}
