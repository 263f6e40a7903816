package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndValidate(t *testing.T) {
	m := NewManager("toets-sleutel", time.Hour)
	in := Claims{ActorID: uuid.New(), ActorNaam: "Ds. Venter", Rol: "admin"}

	signed, err := m.Issue(in, time.Now())
	require.NoError(t, err)

	got, err := m.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, in.ActorID, got.ActorID)
	assert.Equal(t, "Ds. Venter", got.ActorNaam)
	assert.Equal(t, "admin", got.Rol)
}

func TestValidateWrongKey(t *testing.T) {
	signed, err := NewManager("sleutel-a", time.Hour).Issue(Claims{ActorID: uuid.New()}, time.Now())
	require.NoError(t, err)

	_, err = NewManager("sleutel-b", time.Hour).Validate(signed)
	assert.Error(t, err)
}

func TestValidateExpired(t *testing.T) {
	m := NewManager("toets-sleutel", time.Minute)
	signed, err := m.Issue(Claims{ActorID: uuid.New()}, time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = m.Validate(signed)
	assert.Error(t, err)
}

func TestValidateGarbage(t *testing.T) {
	_, err := NewManager("toets-sleutel", time.Hour).Validate("nie-n-token")
	assert.Error(t, err)
}
