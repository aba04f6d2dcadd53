// Package csvconv renders CSV row streams as raw CSV, HTML tables, XML
// documents and JSON-ready structures.
//
// # Sources
//
// Rows come from a [Source], a restartable sequence that every renderer
// rewinds before use, so rendering the same source twice yields identical
// output. [NewSliceSource] wraps rows held in memory; [NewReaderSource]
// parses CSV from a seekable byte stream and keeps field bytes exactly as
// stored.
//
// # Encodings
//
// A document declares the encoding its fields are stored in. [Normalize]
// wraps a source so that every field is converted to UTF-8 as rows are
// pulled. When the declared encoding is already UTF-8 the source is
// returned unchanged. A field that is not valid in the declared encoding
// fails the render with an [*EncodingError]:
//
//	src, err := csvconv.Normalize(raw, "windows-1252")
//	rows, err := csvconv.RenderStructured(src)
//
// # Renderers
//
//   - [RenderPassthrough] streams the raw document to a writer.
//   - [RenderTable] builds an HTML table fragment in the source encoding.
//   - [NewTreeRenderer] and [RenderTreeDocument] build an XML document of
//     root, row and cell elements.
//   - [RenderStructured] materializes rows for a JSON or YAML encoder.
//
// [Converter] bundles a source with its encoding and applies normalization
// where each renderer needs it:
//
//	c := csvconv.New(csvconv.NewReaderSource(f, csvconv.ReaderOptions{}), "ISO-8859-1")
//	out, err := c.XML(csvconv.Tags{Root: "people"})
//	data, err := json.Marshal(c)
//
// # Format Selection
//
// Use [ParseFormat] to turn a flag value into a [Format] and
// [Converter.Write] to render it:
//
//	f, err := csvconv.ParseFormat(flagValue)
//	err = c.Write(os.Stdout, f)
package csvconv
