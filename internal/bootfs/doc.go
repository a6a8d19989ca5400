// Package bootfs reads and writes the firmware boot files on a boot partition.
//
// A Partition names a directory plus the config.txt and cmdline.txt file
// names inside it. Reads parse the files with the fwconfig and cmdline
// packages; writes are atomic (temporary file in the same directory, then
// rename) and keep the original file mode.
//
// # Usage Example
//
//	part := bootfs.NewPartition("/boot/firmware")
//
//	cfg, err := part.ReadConfig()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg.Set("all", "enable_uart", "1")
//	if err := part.WriteConfig(cfg); err != nil {
//	    log.Fatal(err)
//	}
//
// # Error Handling
//
// Every failure is a *FileError carrying the operation and path. Parse
// failures wrap the *fwconfig.UnrecognizedLineError, so errors.As still finds it.
package bootfs
