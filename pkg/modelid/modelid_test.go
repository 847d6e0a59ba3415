package modelid

import (
	"strings"
	"testing"

	"github.com/weiche-dev/weiche/pkg/api"
)

func TestSplit_ProviderAndVendorModel(t *testing.T) {
	id, err := Split("nvidia/databricks/dbrx-instruct")
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if id.Provider != "nvidia" {
		t.Errorf("Provider = %q, want %q", id.Provider, "nvidia")
	}
	if id.VendorModel != "databricks/dbrx-instruct" {
		t.Errorf("VendorModel = %q, want %q", id.VendorModel, "databricks/dbrx-instruct")
	}
}

func TestSplit_InnerNamespacePreserved(t *testing.T) {
	// Only the outer routing prefix is stripped; the vendor's own
	// namespace segment stays on the wire.
	id, err := Split("nvidia/nvidia/nv-embedqa-e5-v5")
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if id.VendorModel != "nvidia/nv-embedqa-e5-v5" {
		t.Errorf("VendorModel = %q, want %q", id.VendorModel, "nvidia/nv-embedqa-e5-v5")
	}
}

func TestSplit_SingleSegmentVendorModel(t *testing.T) {
	id, err := Split("nvidia/nv-embedqa-e5-v5")
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if id.VendorModel != "nv-embedqa-e5-v5" {
		t.Errorf("VendorModel = %q, want %q", id.VendorModel, "nv-embedqa-e5-v5")
	}
}

func TestSplit_NoProviderPrefix(t *testing.T) {
	_, err := Split("invalid_model")
	if err == nil {
		t.Fatal("expected error for model without provider prefix")
	}

	apiErr := api.AsAPIError(err)
	if apiErr == nil {
		t.Fatalf("expected *api.APIError, got %T", err)
	}
	if apiErr.Type != api.ErrorTypeInvalidRequest {
		t.Errorf("error type = %q, want %q", apiErr.Type, api.ErrorTypeInvalidRequest)
	}
	// The message must name the offending input.
	if !strings.Contains(apiErr.Message, "LLM Provider NOT provided") {
		t.Errorf("message %q does not explain the missing provider", apiErr.Message)
	}
	if !strings.Contains(apiErr.Message, "model=invalid_model") {
		t.Errorf("message %q does not name the offending input", apiErr.Message)
	}
}

func TestSplit_EmptySegments(t *testing.T) {
	for _, model := range []string{"", "/", "nvidia/", "/dbrx-instruct"} {
		if _, err := Split(model); err == nil {
			t.Errorf("Split(%q): expected error", model)
		}
	}
}

func TestProviderModelID_String(t *testing.T) {
	id := ProviderModelID{Provider: "nvidia", VendorModel: "databricks/dbrx-instruct"}
	if got := id.String(); got != "nvidia/databricks/dbrx-instruct" {
		t.Errorf("String() = %q, want %q", got, "nvidia/databricks/dbrx-instruct")
	}
}
