package unidata

import (
	"sync"

	"github.com/npillmayer/translit/table"
)

var once sync.Once
var registryStore *table.Store
var registryOverrides table.Overrides

// Registry returns the process-wide mapping store and override list built
// from the generated reference tables. The first call builds and freezes the
// store; subsequent calls return the same immutable structures, so unlimited
// concurrent readers are safe.
func Registry() (*table.Store, table.Overrides) {
	once.Do(build)
	return registryStore, registryOverrides
}

func build() {
	builder := table.NewBuilder()
	for _, blk := range []map[rune]string{
		block00, block01, block03, block04, block1E, block20, block21,
		block24, block26, block30, block4E, block65, blockFF, block1F6,
	} {
		err := builder.SetAll(blk)
		assert(err == nil, "unidata: invalid generated table entry: "+errString(err))
	}
	registryStore = builder.Freeze()
	registryOverrides = table.MustOverrides(mathSymbolOverrides)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
