package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryValidate(t *testing.T) {
	valid := Entry{Title: "FE", Platform: "Switch", Genre: "RPG"}

	tests := []struct {
		name    string
		mutate  func(e *Entry)
		wantErr error
	}{
		{name: "complete entry is valid", mutate: func(e *Entry) {}},
		{name: "empty title", mutate: func(e *Entry) { e.Title = "" }, wantErr: ErrInvalidName},
		{name: "blank platform", mutate: func(e *Entry) { e.Platform = "   " }, wantErr: ErrInvalidName},
		{name: "empty genre", mutate: func(e *Entry) { e.Genre = "" }, wantErr: ErrInvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.mutate(&e)
			err := e.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEntryGame(t *testing.T) {
	e := Entry{GameID: "a", Title: "FE", Played: false, Completed: true, Platform: "Switch", Genre: "RPG"}
	assert.Equal(t, Game{GameID: "a", Title: "FE", Played: false, Completed: true}, e.Game())
}

func TestEntryString(t *testing.T) {
	e := Entry{Title: "FE", Played: false, Completed: true, Platform: "Switch", Genre: "RPG"}
	assert.Equal(t,
		"Title: FE || Played: False || Completed: True || Platform: Switch || Genre: RPG",
		e.String())
}
