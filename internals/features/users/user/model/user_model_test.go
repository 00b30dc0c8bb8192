package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	var u UserModel
	require.NoError(t, u.SetPassword("hunter2hunter2"))

	assert.NotEqual(t, "hunter2hunter2", u.Password, "stored value is a hash, not the plaintext")
	assert.True(t, u.CheckPassword("hunter2hunter2"))
	assert.False(t, u.CheckPassword("wrong-password"))
	assert.False(t, u.CheckPassword(""))
}

func TestSetPasswordRehashes(t *testing.T) {
	var u UserModel
	require.NoError(t, u.SetPassword("first-password"))
	first := u.Password

	require.NoError(t, u.SetPassword("second-password"))
	assert.NotEqual(t, first, u.Password)
	assert.False(t, u.CheckPassword("first-password"))
	assert.True(t, u.CheckPassword("second-password"))
}
