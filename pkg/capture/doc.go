// Package capture decodes recorded terminal sessions into a replayable event
// stream.
//
// # Supported capture formats
//
// # Timing log
//
// The format written by script(1) with the -t flag: a timing file paired with
// a raw output file.
//
// The timing file is UTF-8 text with one record per line:
//
//	delay_seconds byte_count
//
// Where:
//
//   - delay_seconds: decimal (possibly fractional) seconds that passed since
//     the previous chunk of output. Converted to milliseconds by ceiling.
//   - byte_count: how many bytes of the raw output file belong to this record.
//
// The raw output file holds arbitrary bytes. Its first line (terminated by \n)
// is a capture header ("Script started on ...") and carries no session bytes;
// everything after it is consumed in byte_count-sized chunks, one per timing
// line, with no separators between chunks.
//
// Example timing file:
//
//	0.500000 5
//	1.000000 3
//
// With raw output "header\nhelloxyz" this decodes to two events: "hello" at
// offset 500 and "xyz" at offset 1500.
//
// # ttyrec
//
// A flat binary buffer of back-to-back records with no padding:
//
//	int32 secs, int32 usecs, int32 length, then length payload bytes
//
// The three header fields are little-endian. secs and usecs form an absolute
// timestamp; the delay of a record is the difference between its timestamp and
// the previous record's, in milliseconds. The first record establishes the
// time origin and always lands at offset 0.
//
// # Error behavior
//
// A declared byte count or payload length that extends past the available data
// is a fatal error (ErrTruncated), as is a timing line that does not parse
// (ErrMalformedTiming) or a ttyrec header with fewer than 12 bytes remaining
// (ErrMalformedHeader). Fatal errors abort the whole decode: no partial event
// stream is ever returned. Payload bytes that are not valid UTF-8 are not an
// error; each invalid byte is replaced with U+FFFD.
package capture
