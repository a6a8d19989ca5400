// Package fwconfig reads and writes the firmware config.txt format.
//
// The format is line oriented. Every line is one of four kinds:
//   - Empty: a zero-length line
//   - Comment: a line starting with '#'
//   - Property: "name=value" with no whitespace on either side
//   - Filter header: "[name]", selecting the section that following lines belong to
//
// Lines before the first header belong to the global section. Lines under an
// "[all]" header belong to the universal "all" section. Every other header
// names a filter section; repeating a header continues the same section.
//
// # Usage Example
//
//	cfg, err := fwconfig.Parse(text)
//	if err != nil {
//	    var lineErr *fwconfig.UnrecognizedLineError
//	    if errors.As(err, &lineErr) {
//	        log.Fatalf("line %d: %q", lineErr.Index+1, lineErr.Line)
//	    }
//	    log.Fatal(err)
//	}
//
//	if err := cfg.Set("pi4", "arm_boost", "1"); err != nil {
//	    log.Fatal(err)
//	}
//
//	os.WriteFile("config.txt", []byte(fwconfig.Stringify(cfg)), 0644)
//
// # Reconstruction
//
// Stringify emits the global section first, then filter sections in the order
// their headers first appeared, then the "all" section last. Each line's Text
// is written verbatim, so a parse/stringify round trip reproduces the input
// exactly as long as sections are contiguous and "[all]" is the final block.
// Callers that change Property, Value or Filter by hand must also update Text;
// the editing helpers (Set, NewPropertyLine, ...) do this for you.
//
// # Thread Safety
//
// Parse, Classify and Stringify share no state and are safe for concurrent use.
// A FirmwareConfig is not synchronized; guard it yourself if shared.
package fwconfig
