package encode

import (
	"bytes"

	"github.com/tabkv/go-tabkv/tree"
)

func MustString(t *tree.Tree) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(t, buf); err != nil {
		panic(err)
	}
	return buf.String()
}
