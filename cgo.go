package zimg

/*
#cgo pkg-config: zimg
#include <zimg.h>
void zimggo_dummy() {}
*/
import "C"

func init() {
	C.zimggo_dummy()
}
