package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestSettingsRecordOverDefaults(t *testing.T) {
	defaults := ShopSettings{ShopName: "Shop", Phone: "1", Email: "a@b.c"}
	rec := SettingsRecord{Phone: strp("2"), Email: strp("")}

	got := rec.Over(defaults)
	assert.Equal(t, "Shop", got.ShopName)
	assert.Equal(t, "2", got.Phone)
	assert.Equal(t, "", got.Email, "present empty value overrides default")
}

func TestSettingsRecordMergeKeepsAbsentFields(t *testing.T) {
	rec := SettingsRecord{Phone: strp("1"), Address: strp("Siliguri")}
	rec.Merge(SettingsRecord{Phone: strp("2")})

	require.NotNil(t, rec.Address)
	assert.Equal(t, "Siliguri", *rec.Address)
	assert.Equal(t, "2", *rec.Phone)
	assert.False(t, rec.Empty())
	assert.True(t, SettingsRecord{}.Empty())
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "s3cret"))
	assert.False(t, CheckPassword(hash, "wrong"))
}

func TestProductFieldsRoundTrip(t *testing.T) {
	p := Product{ID: "x", Name: "Sofa", Available: true}
	assert.Equal(t, p, p.Fields().WithID("x"))
}
