package harness

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// SceneDigest pumps to quiescence and returns a sha256 hex digest of the
// canonical scene serialization. Two scenes with the same size and the
// same ops in the same order produce the same digest, so it is a cheap
// equality probe for "nothing visible changed".
func (h *Harness) SceneDigest() string {
	scene := h.Pump()
	payload := struct {
		Window [2]float64 `json:"window"`
		Ops    []SceneOp  `json:"ops"`
	}{
		Window: [2]float64{round2(scene.Size().Width), round2(scene.Size().Height)},
		Ops:    serializeScene(scene),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		// The op records are plain maps of strings and floats; this
		// cannot fail on well-formed scenes.
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
