//go:build windows && (amd64 || arm64)

package windows

import "github.com/mj1618/selwatch/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		s, err := openSession()
		if err != nil {
			return nil, err
		}
		return platform.NewSession(s.automation, NewPointer(), s.close), nil
	}
}
