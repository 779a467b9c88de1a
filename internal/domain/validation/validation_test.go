package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plantForm struct {
	Name     string  `json:"name" validate:"notblank,letters,max=10"`
	Room     string  `json:"room,omitempty" validate:"omitempty,lettersnum"`
	Photo    string  `json:"photo,omitempty" validate:"omitempty,photo"`
	Bought   string  `json:"bought" validate:"notblank,date"`
	Status   *string `json:"status,omitempty" validate:"omitnil,oneof=healthy sick"`
	Internal string  `json:"-" validate:"omitempty,max=1"`
}

type listQuery struct {
	Kind string `query:"kind" validate:"omitempty,oneof=indoor outdoor"`
}

func TestCustomRules(t *testing.T) {
	t.Parallel()

	valid := plantForm{Name: "Jiboia", Bought: "2024-01-10"}

	tests := []struct {
		name    string
		mutate  func(f *plantForm)
		wantErr string
	}{
		{name: "valid", mutate: func(f *plantForm) {}},
		{name: "diacritics allowed", mutate: func(f *plantForm) { f.Name = "Adão" }},
		{name: "blank name", mutate: func(f *plantForm) { f.Name = "   " }, wantErr: "name is required"},
		{name: "digits in name", mutate: func(f *plantForm) { f.Name = "Ficus 2" }, wantErr: "name may only contain letters and spaces"},
		{name: "too long", mutate: func(f *plantForm) { f.Name = "Monstera deliciosa" }, wantErr: "name must be at most 10 characters"},
		{name: "room with digits", mutate: func(f *plantForm) { f.Room = "Quarto 2" }},
		{name: "room with punctuation", mutate: func(f *plantForm) { f.Room = "Quarto #2" }, wantErr: "room may only contain letters, digits and spaces"},
		{name: "photo url", mutate: func(f *plantForm) { f.Photo = "https://example.com/p.jpg" }},
		{name: "photo data uri", mutate: func(f *plantForm) { f.Photo = "data:image/png;base64,iVBORw0KGgo=" }},
		{name: "photo ftp", mutate: func(f *plantForm) { f.Photo = "ftp://example.com/p.jpg" }, wantErr: "photo must be an image data URI or an http(s) URL"},
		{name: "fallback date layout", mutate: func(f *plantForm) { f.Bought = "January 10, 2024" }},
		{name: "impossible date", mutate: func(f *plantForm) { f.Bought = "2024-02-30" }, wantErr: "bought must be a date in YYYY-MM-DD format"},
		{name: "enum", mutate: func(f *plantForm) { s := "wilted"; f.Status = &s }, wantErr: "status must be one of: healthy, sick"},
		{name: "hidden field uses go name", mutate: func(f *plantForm) { f.Internal = "xy" }, wantErr: "Internal must be at most 1 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			form := valid
			tt.mutate(&form)

			err := Struct(form)
			if tt.wantErr == "" {
				require.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, Describe(err))
		})
	}
}

func TestDescribe_QueryTagNames(t *testing.T) {
	t.Parallel()

	err := Struct(listQuery{Kind: "cave"})
	require.Error(t, err)

	fields := FieldErrors(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "kind", fields[0].Field)
	assert.Equal(t, "kind must be one of: indoor, outdoor", Describe(err))
}

func TestDescribe_JoinsMultipleFailures(t *testing.T) {
	t.Parallel()

	err := Struct(plantForm{})
	require.Error(t, err)

	assert.Equal(t, "name is required; bought is required", Describe(err))
}

func TestIsHTTPURL(t *testing.T) {
	t.Parallel()

	assert.True(t, IsHTTPURL("http://plants.local/a.png"))
	assert.False(t, IsHTTPURL("/relative/a.png"))
	assert.False(t, IsHTTPURL("https://"))
}
