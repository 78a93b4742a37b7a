// Package natsort orders file names the way people count pages.
//
// Plain lexical sorting puts "page_10.png" before "page_2.png". [Compare]
// instead reads runs of digits (and decimal points) as numbers, so a
// directory of scans is listed in reading order:
//
//	names := []string{"test_01.png", "test_10.png", "test_5.png"}
//	natsort.Sort(names, true)
//	// test_01.png test_5.png test_10.png
package natsort
