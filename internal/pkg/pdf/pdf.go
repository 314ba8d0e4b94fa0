package pdf

import (
	"context"
)

// Converter 把渲染好的 HTML 转成 PDF 字节流
//
//go:generate mockgen -source=./pdf.go -package=pdfmocks -destination=./mocks/pdf.mock.go -typed Converter
type Converter interface {
	ConvertHTMLToPDF(ctx context.Context, html string, opts ...Option) ([]byte, error)
}

type Options struct {
	PaperWidthInch   float64
	PaperHeightInch  float64
	MarginTopInch    float64
	MarginBottomInch float64
	MarginLeftInch   float64
	MarginRightInch  float64
	Landscape        bool
	Title            string
}

type Option func(*Options)
