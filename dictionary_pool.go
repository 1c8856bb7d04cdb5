package xpresshuff

import "sync"

// dictionaryPool is a pool of match-finder dictionaries (the hash arrays are
// ~640 KiB, too large to allocate per call).
var dictionaryPool = sync.Pool{
	New: func() any {
		return &dictionary{}
	},
}

// acquireDictionary acquires a dictionary from the pool and resets it for input.
func acquireDictionary(input []byte, maxChain int) *dictionary {
	dict := dictionaryPool.Get().(*dictionary)
	dict.reset(input, maxChain)
	return dict
}

// releaseDictionary releases a dictionary to the pool.
func releaseDictionary(dict *dictionary) {
	if dict == nil {
		return
	}

	dict.input = nil
	dictionaryPool.Put(dict)
}
