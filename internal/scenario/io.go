package scenario

import (
	"encoding/gob"
	"io"
	"os"

	"github.com/golang/glog"
	gzip "github.com/klauspost/pgzip"
	"github.com/pkg/errors"

	"github.com/timpalpant/gamesim/admissions"
)

// WriteMatching writes the matching as gzip-compressed gob.
func WriteMatching(w io.Writer, m admissions.Matching) error {
	zw := gzip.NewWriter(w)
	if err := gob.NewEncoder(zw).Encode(m); err != nil {
		zw.Close()
		return errors.Wrap(err, "encoding matching")
	}

	return zw.Close()
}

// ReadMatching reads a matching written by WriteMatching.
func ReadMatching(r io.Reader) (admissions.Matching, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	var m admissions.Matching
	if err := gob.NewDecoder(zr).Decode(&m); err != nil {
		return nil, errors.Wrap(err, "decoding matching")
	}

	return m, nil
}

func SaveMatching(filename string, m admissions.Matching) error {
	glog.Infof("Saving matching to: %v", filename)
	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	if err := WriteMatching(f, m); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func LoadMatching(filename string) (admissions.Matching, error) {
	glog.Infof("Loading matching from: %v", filename)
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadMatching(f)
}
