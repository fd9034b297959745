package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/please-build/arindex"
	"github.com/please-build/arindex/internal/artest"
	"github.com/please-build/arindex/internal/config"
)

func TestArchiveOptions(t *testing.T) {
	data := artest.New().
		AddBSD(artest.Entry{Name: "dup.o", Body: []byte("one")}).
		AddBSD(artest.Entry{Name: "dup.o", Body: []byte("two")}).
		Bytes()

	tests := []struct {
		name      string
		cfg       config.Config
		variant   arindex.Variant
		wantErr   bool
		wantNames []string
	}{
		{
			name:      "defaults to bsd",
			cfg:       config.Config{},
			variant:   arindex.BSD,
			wantNames: []string{"dup.o"},
		},
		{
			name:      "case insensitive",
			cfg:       config.Config{Variant: "BSD"},
			variant:   arindex.BSD,
			wantNames: []string{"dup.o"},
		},
		{
			name:      "common",
			cfg:       config.Config{Variant: "common"},
			variant:   arindex.Common,
			wantNames: []string{"#1/8"},
		},
		{
			name:    "strict duplicates",
			cfg:     config.Config{StrictDuplicates: true},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := tt.cfg.ArchiveOptions()
			require.NoError(t, err)

			archive, err := arindex.New(data, opts...)
			if tt.wantErr {
				assert.ErrorIs(t, err, arindex.ErrDuplicateMember)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.variant, archive.Variant())
			assert.Equal(t, tt.wantNames, archive.Names())
		})
	}
}

func TestArchiveOptionsUnknownVariant(t *testing.T) {
	cfg := config.Config{Variant: "gnu"}
	_, err := cfg.ArchiveOptions()
	assert.ErrorContains(t, err, `unknown variant "gnu"`)
}
