// Package csvline converts between a row of string fields and a single
// CSV-formatted line.
//
// # Core
//
// Encode joins fields with commas, quoting any field that contains a comma,
// a double quote, a carriage return or a newline, and doubling embedded
// quotes. The line always ends with one newline. Decode reverses it and
// accepts lines with or without the trailing newline:
//
//	line, _ := csvline.Encode([]string{`He said "hi"`, "x,y"})
//	// "\"He said \"\"hi\"\"\",\"x,y\"\n"
//	fields, _ := csvline.Decode(line)
//	// [He said "hi" x,y]
//
// Decode(Encode(r)) == r holds for every row. The empty row encodes to
// "\n" and decodes back from "" or "\n"; a row holding one empty field
// encodes to "\"\"\n".
//
// # Errors
//
// Encode fails only with *SerializeError and Decode only with
// *DeserializeError. Both match their kind sentinel (ErrSerialize,
// ErrDeserialize) and their cause under errors.Is:
//
//	_, err := csvline.Decode(`a,"b`)
//	errors.Is(err, csvline.ErrDeserialize)       // true
//	errors.Is(err, csvline.ErrUnterminatedQuote) // true
//
// # Dialects
//
// New builds a LineCodec with functional options:
//
//	lc, _ := csvline.New(csvline.WithComma(';'), csvline.WithCRLF())
//
// # Tables
//
// EncodeAll and DecodeAll apply the line codec to whole CSV content, one
// record per line. Transcode re-encodes a header-led table through any
// Codec; providers live in the json, yaml and msgpack subpackages.
//
// # Processing
//
// A Processor applies column transforms at four boundaries:
//
//   - receive: ingress from external sources (hash)
//   - load: ingress from storage (decrypt)
//   - store: egress to storage (encrypt)
//   - send: egress to external destinations (mask, redact)
//
// Rules come either from explicit Rule values or from struct tags:
//
//	type Person struct {
//	    ID    string `csv:"id"`
//	    Email string `csv:"email" store.encrypt:"aes" load.decrypt:"aes" send.mask:"email"`
//	    IP    string `csv:"ip_address" send.mask:"ip"`
//	}
//
//	proc, _ := csvline.NewProcessorFor[Person](nil)
//	enc, _ := csvline.AES(key)
//	proc.SetEncryptor(csvline.EncryptAES, enc)
//	row, _ := csvline.MarshalRow(person)
//	line, _ := proc.Send(ctx, row) // email and ip masked
//
// # Signals
//
// Encode, Decode, table and processor operations emit capitan events
// (SignalLineEncoded, SignalLineDecoded, ...) carrying sizes, durations and
// errors.
package csvline
