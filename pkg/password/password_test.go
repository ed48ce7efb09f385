package password_test

import (
	"testing"

	"portfolio-backend/pkg/password"

	"github.com/stretchr/testify/assert"
)

func TestHashAndCompare(t *testing.T) {
	hasher := password.NewHasher(4) // min cost keeps the test fast

	hashed, err := hasher.Hash("s3cret-password")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hashed)

	assert.True(t, hasher.Compare("s3cret-password", hashed))
	assert.False(t, hasher.Compare("wrong-password", hashed))
}

func TestInvalidCostFallsBack(t *testing.T) {
	hasher := password.NewHasher(99)

	hashed, err := hasher.Hash("pw")
	assert.NoError(t, err)
	assert.True(t, hasher.Compare("pw", hashed))
}
