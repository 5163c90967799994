package model

import (
	"fmt"
	"path/filepath"

	"github.com/xeipuuv/gojsonschema"
)

// ValidatePartial validates an incoming partial-profile map against the
// profile.schema.json file under tplDir. The schema only constrains the
// shape of what is present; every field is optional, so an empty map is
// valid. The store itself performs no validation.
func ValidatePartial(tplDir string, m map[string]interface{}) error {
	// Use absolute canonical file:// path for the schema so loaders on all
	// platforms (including Windows) resolve file references correctly.
	abs, err := filepath.Abs(filepath.Join(tplDir, "profile.schema.json"))
	if err != nil {
		return err
	}
	schemaPath := "file://" + filepath.ToSlash(abs)
	schemaLoader := gojsonschema.NewReferenceLoader(schemaPath)
	docLoader := gojsonschema.NewGoLoader(m)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	// collect errors
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("schema validation failed: %s", msgs)
}
