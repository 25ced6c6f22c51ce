package neutral

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeTitle(t *testing.T) {
	in := `a<b>c:d"e/f\g|h?i*j`
	want := "a_b_c_d_e_f_g_h_i_j"
	require.Equal(t, want, SanitizeTitle(in))
}

func TestSanitizeTitle_Idempotent(t *testing.T) {
	in := `weird<name>/here`
	once := SanitizeTitle(in)
	twice := SanitizeTitle(once)
	require.Equal(t, once, twice)
}

func TestSanitizeTitle_LeavesOtherCodePointsIntact(t *testing.T) {
	in := "Step 1 (steady)"
	require.Equal(t, in, SanitizeTitle(in))
}
