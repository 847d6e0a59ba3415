// Package modelid parses provider-prefixed model identifiers.
//
// Callers address models as "<provider>/<vendor_model>", where vendor_model
// may itself contain "/" segments (many vendors namespace their catalog,
// e.g. "nvidia/databricks/dbrx-instruct" routes to the nvidia provider and
// puts "databricks/dbrx-instruct" on the wire). Only the outer routing
// prefix is stripped; the inner vendor namespace is preserved.
package modelid

import (
	"fmt"
	"strings"

	"github.com/weiche-dev/weiche/pkg/api"
)

// ProviderModelID is the result of splitting a caller-supplied model string.
type ProviderModelID struct {
	// Provider is the routing prefix, e.g. "nvidia".
	Provider string

	// VendorModel is the model identifier as the vendor expects it, with
	// no routing prefix. Never empty.
	VendorModel string
}

// String reassembles the caller-facing form.
func (id ProviderModelID) String() string {
	return id.Provider + "/" + id.VendorModel
}

// Split divides a caller model string on the first "/". A model string with
// no provider prefix is ambiguous and is rejected rather than guessed.
func Split(model string) (ProviderModelID, error) {
	provider, vendorModel, found := strings.Cut(model, "/")
	if !found || provider == "" || vendorModel == "" {
		return ProviderModelID{}, api.NewInvalidRequestError(0, fmt.Sprintf(
			"LLM Provider NOT provided. Pass in the LLM provider you are trying to call. You passed model=%s", model))
	}
	return ProviderModelID{Provider: provider, VendorModel: vendorModel}, nil
}
