package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordService_HashAndCompare(t *testing.T) {
	svc := NewPasswordService()

	hashed, err := svc.Hash("Sup3rSecret")
	require.NoError(t, err)
	assert.NotEqual(t, "Sup3rSecret", hashed, "stored credential must not be the plain password")

	assert.True(t, svc.Compare("Sup3rSecret", hashed))
	assert.False(t, svc.Compare("sup3rsecret", hashed))
	assert.False(t, svc.Compare("", hashed))
}

func TestPasswordService_HashIsSalted(t *testing.T) {
	svc := NewPasswordService()

	first, err := svc.Hash("Sup3rSecret")
	require.NoError(t, err)
	second, err := svc.Hash("Sup3rSecret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, svc.Compare("Sup3rSecret", first))
	assert.True(t, svc.Compare("Sup3rSecret", second))
}

func TestPasswordService_CompareMalformedHash(t *testing.T) {
	svc := NewPasswordService()

	assert.False(t, svc.Compare("Sup3rSecret", "not-an-encoded-hash"))
	assert.False(t, svc.Compare("Sup3rSecret", ""))
}
