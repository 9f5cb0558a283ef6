package sam

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/png"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/segmentkit/segment-mcp/internal/mask"
)

// ErrModelInvocation marks a failure of the external mask generator:
// unreachable service, non-2xx response, or an undecodable reply. It is
// fatal to the request and never retried here.
var ErrModelInvocation = errors.New("model invocation failed")

// Generator produces mask candidates for a processing-resolution image.
// Implementations must be safe for concurrent use if the surrounding server
// issues concurrent requests.
type Generator interface {
	Generate(ctx context.Context, img image.Image, params Params) ([]mask.Candidate, error)
}

// Client is the HTTP Generator implementation. It posts the PNG-encoded
// image and the generator parameters to the inference service's /generate
// endpoint.
type Client struct {
	rest *resty.Client
}

// NewClient returns a Client for the service at baseURL. The timeout bounds
// the whole request, model inference included.
func NewClient(baseURL string, timeout time.Duration) *Client {
	rest := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	return &Client{rest: rest}
}

type generateRequest struct {
	ImageBase64 string `json:"image_base64"`
	Params      Params `json:"params"`
}

// wireMask mirrors one record of the service response. The bounding box is
// corner-ordered: [x1, y1, x2, y2] at processing resolution.
type wireMask struct {
	BBox         [4]float64 `json:"bbox"`
	Area         float64    `json:"area"`
	PredictedIoU float64    `json:"predicted_iou"`
}

type generateResponse struct {
	Masks []wireMask `json:"masks"`
}

// Generate implements Generator.
func (c *Client) Generate(ctx context.Context, img image.Image, params Params) ([]mask.Candidate, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrapf(ErrModelInvocation, "encoding image: %v", err)
	}

	var out generateResponse
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(generateRequest{
			ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
			Params:      params,
		}).
		SetResult(&out).
		Post("/generate")
	if err != nil {
		return nil, errors.Wrapf(ErrModelInvocation, "posting to generator: %v", err)
	}
	if resp.IsError() {
		return nil, errors.Wrapf(ErrModelInvocation, "generator returned %s: %s",
			resp.Status(), resp.String())
	}

	candidates := make([]mask.Candidate, len(out.Masks))
	for i, m := range out.Masks {
		candidates[i] = mask.Candidate{
			Box:        mask.Box{X1: m.BBox[0], Y1: m.BBox[1], X2: m.BBox[2], Y2: m.BBox[3]},
			Area:       m.Area,
			Confidence: m.PredictedIoU,
		}
	}
	return candidates, nil
}
