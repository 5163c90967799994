package repository

import (
	"context"
	"encoding/json"
	"fmt"
)

// PrefsRepo persists the editor's light/dark preference, the second of
// the two fixed-key blobs.
type PrefsRepo struct {
	store BlobStore
}

func NewPrefsRepo(store BlobStore) *PrefsRepo {
	return &PrefsRepo{store: store}
}

func (r *PrefsRepo) ThemePreference(ctx context.Context) (string, error) {
	b, err := r.store.Get(ctx, KeyThemePreference)
	if err != nil {
		return "", err
	}
	if len(b) == 0 {
		return "light", nil
	}
	var pref string
	if err := json.Unmarshal(b, &pref); err != nil {
		return "", err
	}
	if pref != "light" && pref != "dark" {
		return "light", nil
	}
	return pref, nil
}

func (r *PrefsRepo) SetThemePreference(ctx context.Context, pref string) error {
	if pref != "light" && pref != "dark" {
		return fmt.Errorf("invalid theme preference %q", pref)
	}
	b, err := json.Marshal(pref)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, KeyThemePreference, b)
}
