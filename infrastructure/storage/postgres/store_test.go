package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGetQuery(t *testing.T) {
	query, args, err := buildGetQuery(NamespaceSnapshots, "Titan_Central")

	require.NoError(t, err)
	assert.Equal(t, "SELECT content FROM tracking_documents WHERE key = $1 AND namespace = $2", query)
	assert.Equal(t, []interface{}{"Titan_Central", NamespaceSnapshots}, args)
}

func TestBuildPutQuery(t *testing.T) {
	query, args, err := buildPutQuery(NamespaceChangelogs, "Titan_Central", []byte("texto"))

	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO tracking_documents (namespace,key,content) VALUES ($1,$2,$3)")
	assert.Contains(t, query, "ON CONFLICT (namespace, key) DO UPDATE SET")
	assert.Equal(t, []interface{}{NamespaceChangelogs, "Titan_Central", []byte("texto")}, args)
}
