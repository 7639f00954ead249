//go:build darwin

package qos

/*
#include <pthread/qos.h>

static int apply_qos_class(int cls) {
	return pthread_set_qos_class_self_np((qos_class_t)cls, 0);
}
*/
import "C"

// Apply sets the calling thread's QoS class via pthread_set_qos_class_self_np.
// Callers should invoke it once per worker, before doing any work on that
// goroutine, since the call binds to the current OS thread, not the
// goroutine (runtime.LockOSThread is not required: the hint is advisory and
// a goroutine migrating threads mid-task is an acceptable imprecision here).
func Apply(c Class) {
	switch c {
	case UserInitiated:
		C.apply_qos_class(C.QOS_CLASS_USER_INITIATED)
	case Background:
		C.apply_qos_class(C.QOS_CLASS_BACKGROUND)
	}
}
