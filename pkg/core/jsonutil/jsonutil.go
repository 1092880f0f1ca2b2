// Package jsonutil cleans and decodes model-produced JSON. Repair here
// is strictly syntactic (code fences, stray commas, quoting); whether
// the decoded value satisfies the record contract is the normalizer's
// call, and a value that fails it is rejected, not patched.
package jsonutil

import (
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
)

// Decode unmarshals raw into v, falling back to a syntactic repair pass
// when the text is not valid JSON as delivered. Models wrapped in
// markdown fences or with a trailing comma still decode; text that no
// repair can make parseable returns an error.
func Decode(raw string, v interface{}) error {
	if err := json.Unmarshal([]byte(raw), v); err == nil {
		return nil
	}

	repaired, err := jsonrepair.RepairJSON(raw)
	if err != nil {
		return fmt.Errorf("payload is not JSON and could not be repaired: %w", err)
	}
	if err := json.Unmarshal([]byte(repaired), v); err != nil {
		return fmt.Errorf("payload is not valid JSON: %w", err)
	}
	return nil
}
