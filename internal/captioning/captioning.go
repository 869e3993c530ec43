// Package captioning generates a title, description and tags for a
// photographed food item through an external generative model.
package captioning

import "context"

// Caption is the generated listing content for a photographed item.
type Caption struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// FailureMessage is the inline text shown when generation fails. The call
// is never retried and the failure touches no other state.
const FailureMessage = "No se pudo generar la descripción. Por favor, inténtalo de nuevo o escríbela manualmente."

// Describer turns raw image bytes into a caption.
type Describer interface {
	Describe(ctx context.Context, imageData []byte, mimeType string) (*Caption, error)
}
