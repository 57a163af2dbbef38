package media

import (
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"
)

// Signer issues Cloudinary request signatures. The backend never touches
// file bytes: clients upload directly to the provider with a signature
// from here, and the resulting URL is stored as an opaque string.
type Signer struct {
	CloudName string
	APIKey    string
	APISecret string
}

func NewSigner(cloudName, apiKey, apiSecret string) *Signer {
	return &Signer{
		CloudName: cloudName,
		APIKey:    apiKey,
		APISecret: apiSecret,
	}
}

// UploadSignature is handed to the client for a direct upload.
type UploadSignature struct {
	Signature string `json:"signature"`
	Timestamp int64  `json:"timestamp"`
	APIKey    string `json:"apiKey"`
	CloudName string `json:"cloudName"`
	Folder    string `json:"folder"`
}

// SignUploadRequest produces the signature for an upload into folder,
// following Cloudinary's api_sign_request: parameters sorted by key,
// joined k=v with '&', secret appended, SHA-1 hex digest.
func (s *Signer) SignUploadRequest(folder string) *UploadSignature {
	timestamp := time.Now().Unix()

	params := map[string]string{
		"folder":    folder,
		"timestamp": fmt.Sprintf("%d", timestamp),
	}

	return &UploadSignature{
		Signature: s.signParams(params),
		Timestamp: timestamp,
		APIKey:    s.APIKey,
		CloudName: s.CloudName,
		Folder:    folder,
	}
}

func (s *Signer) signParams(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + s.APISecret))
	return hex.EncodeToString(sum[:])
}

// SignedDeliveryURL builds an authenticated delivery URL for a stored
// asset, valid for Cloudinary's "authenticated" delivery type.
func (s *Signer) SignedDeliveryURL(publicID, resourceType string) string {
	sum := sha1.Sum([]byte(publicID + s.APISecret))
	token := base64.RawURLEncoding.EncodeToString(sum[:])[:8]
	signature := "s--" + token + "--"

	return fmt.Sprintf("https://res.cloudinary.com/%s/%s/authenticated/%s/%s",
		s.CloudName, resourceType, signature, publicID)
}

// ResumePublicID derives the provider public id from a stored resume URL:
// the last path segment with its extension stripped, under the resumes/
// folder.
func ResumePublicID(resumeURL string) string {
	base := path.Base(resumeURL)
	if ext := path.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return "resumes/" + base
}
