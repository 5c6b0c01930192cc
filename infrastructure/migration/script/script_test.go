package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ppcl2025/campaign-change-tracker/infrastructure/storage/file"
	"github.com/ppcl2025/campaign-change-tracker/infrastructure/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMigrate(t *testing.T) {
	source := file.NewStore(filepath.Join(t.TempDir(), "changelogs"), file.ChangelogExt)
	require.NoError(t, source.Put("acct_a", []byte("A")))
	require.NoError(t, source.Put("acct_b", []byte("B")))

	tests := []struct {
		name           string
		dryRun         bool
		setupMock      func(m *mocks.MockStore)
		expectedCopied int
		expectedFailed int
	}{
		{
			name: "deve copiar todas as chaves",
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().Put("acct_a", []byte("A")).Return(nil)
				m.EXPECT().Put("acct_b", []byte("B")).Return(nil)
			},
			expectedCopied: 2,
		},
		{
			name: "deve continuar após falha de gravação",
			setupMock: func(m *mocks.MockStore) {
				m.EXPECT().Put("acct_a", gomock.Any()).Return(errors.New("conexão perdida"))
				m.EXPECT().Put("acct_b", gomock.Any()).Return(nil)
			},
			expectedCopied: 1,
			expectedFailed: 1,
		},
		{
			name:           "não deve gravar em dry-run",
			dryRun:         true,
			setupMock:      func(m *mocks.MockStore) {},
			expectedCopied: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			target := mocks.NewMockStore(ctrl)
			tt.setupMock(target)

			result := migrate("changelogs", source, target, tt.dryRun)

			assert.Equal(t, tt.expectedCopied, result.copied)
			assert.Equal(t, tt.expectedFailed, result.failed)
		})
	}
}
