package umbrella

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIncludeList_Join(t *testing.T) {
	l := IncludeList{"#import <openssl/b.h>", "#import <openssl/a.h>"}

	assert.Equal(t, "#import <openssl/b.h>\n#import <openssl/a.h>", l.Join())
	assert.Equal(t, "", IncludeList{}.Join())
}

func TestIncludeList_Sorted(t *testing.T) {
	l := IncludeList{"#import <openssl/c.h>", "#import <openssl/a.h>", "#import <openssl/b.h>"}

	sorted := l.Sorted()

	assert.Equal(t, IncludeList{
		"#import <openssl/a.h>",
		"#import <openssl/b.h>",
		"#import <openssl/c.h>",
	}, sorted)
	// Receiver untouched.
	assert.Equal(t, IncludeDirective("#import <openssl/c.h>"), l[0])
}

func TestReconcileResult_Equivalent(t *testing.T) {
	assert.True(t, ReconcileResult{}.Equivalent())
	assert.False(t, ReconcileResult{ExtraInStatic: IncludeList{"x"}}.Equivalent())
	assert.False(t, ReconcileResult{ExtraInScanned: IncludeList{"y"}}.Equivalent())
}
