//go:build tools

package pathutils

import (
	_ "github.com/dmarkham/enumer"
)
