/*
Fixed size bitarray (aka bitset) using bytes as buckets.

	ba, _ := bitarray.New(4)   // [4]{0000}
	ba.Set(3)                  // [4]{0001}
	ba.Flip(0)                 // [4]{1001}
	inv, _ := bitarray.Not(ba) // [4]{0110}
	ba.Clear()                 // [4]{0000}
*/
package bitarray
