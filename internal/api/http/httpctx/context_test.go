package httpctx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plantnet/plantnet-server/internal/model"
)

func TestClaims_Roundtrip(t *testing.T) {
	claims := model.SessionClaims{Email: "a@x.com", Role: model.RoleCustomer}
	ctx := SetClaims(context.Background(), claims)

	got, ok := Claims(ctx)
	assert.True(t, ok)
	assert.Equal(t, claims, got)
}

func TestClaims_Absent(t *testing.T) {
	_, ok := Claims(context.Background())
	assert.False(t, ok)
}
