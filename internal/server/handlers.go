package server

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/OpenTraceLab/symsvg/internal/logging"
	"github.com/OpenTraceLab/symsvg/pkg/kicad/symbol"
	"github.com/OpenTraceLab/symsvg/pkg/kicad/symbol/renderer"
	"github.com/OpenTraceLab/symsvg/pkg/raster"
)

// MIME types of the rendered documents.
const (
	MIMEImageSVG = "image/svg+xml"
	MIMEImagePNG = "image/png"
)

// HandleHealth returns server health status
func (s *Server) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"version": s.version,
	})
}

// HandleRender converts the symbol in the request body to SVG
func (s *Server) HandleRender(c echo.Context) error {
	svg, _, err := s.renderRequest(c)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, MIMEImageSVG, svg)
}

// HandleRenderPNG converts the symbol in the request body to a PNG preview
func (s *Server) HandleRenderPNG(c echo.Context) error {
	svg, opts, err := s.renderRequest(c)
	if err != nil {
		return err
	}

	var out bytes.Buffer
	if err := raster.Encode(&out, svg, opts.Size); err != nil {
		return NewConversionError(err)
	}
	return c.Blob(http.StatusOK, MIMEImagePNG, out.Bytes())
}

// renderRequest decodes the request body and renders it with the options
// given in the query string.
func (s *Server) renderRequest(c echo.Context) ([]byte, renderer.Options, error) {
	opts := renderer.Options{
		Size:         s.render.Size,
		Unit:         renderer.DefaultUnit,
		DebugExtents: s.render.DebugExtents,
	}
	err := echo.QueryParamsBinder(c).
		Int("unit", &opts.Unit).
		Int("size", &opts.Size).
		Bool("debugExtents", &opts.DebugExtents).
		BindError()
	if err != nil {
		return nil, opts, NewBadRequestError("invalid query parameter", err)
	}
	if opts.Unit < 1 || opts.Size < 1 {
		return nil, opts, NewBadRequestError("unit and size must be positive", nil)
	}
	if opts.Size > s.render.MaxSize {
		return nil, opts, NewBadRequestError(fmt.Sprintf("size must not exceed %d", s.render.MaxSize), nil)
	}

	format, err := symbol.FormatFromContentType(c.Request().Header.Get(echo.HeaderContentType))
	if err != nil {
		return nil, opts, NewBadRequestError("unsupported body", err)
	}
	sym, err := symbol.Decode(c.Request().Body, format)
	if err != nil {
		return nil, opts, NewBadRequestError("invalid symbol", err)
	}

	var buf bytes.Buffer
	if err := renderer.WriteSVG(&buf, sym, opts); err != nil {
		return nil, opts, NewConversionError(err)
	}

	logging.Logger().Debug("rendered symbol", "name", sym.Name, "unit", opts.Unit, "bytes", buf.Len())
	return buf.Bytes(), opts, nil
}
