package natsort

import "strings"

// Parts is a file name split into a base name and an extension.
type Parts struct {
	Basename  string
	Extension string // including the leading dot, e.g. ".png" or ".tar.gz"
	Multipart bool   // Extension is a compressed tar extension
}

// Split separates name at its last dot. A dot at the very start or end does
// not count, and names ending in a slash are directories without extension.
// "a.tar.gz" splits into "a" and ".tar.gz".
func Split(name string) Parts {
	if strings.HasSuffix(name, "/") {
		return Parts{Basename: name}
	}

	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 || dot == len(name)-1 {
		return Parts{Basename: name}
	}

	base, ext := name[:dot], name[dot+1:]
	if strings.HasSuffix(base, ".tar") {
		inner := strings.LastIndexByte(base, '.')
		return Parts{
			Basename:  base[:inner],
			Extension: "." + base[inner+1:] + "." + ext,
			Multipart: true,
		}
	}
	return Parts{Basename: base, Extension: "." + ext}
}
