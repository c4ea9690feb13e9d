//go:build windows

package matlab

import (
	"golang.org/x/sys/windows/registry"
)

// machineRegistry is the real registryView over HKLM.
type machineRegistry struct {
	key registry.Key
}

func openMachineRegistry() (registryView, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, registryKeyPath, registry.ENUMERATE_SUB_KEYS|registry.QUERY_VALUE)
	if err != nil {
		return nil, err
	}
	return &machineRegistry{key: key}, nil
}

func (m *machineRegistry) SubkeyNames() ([]string, error) {
	return m.key.ReadSubKeyNames(-1)
}

func (m *machineRegistry) RootValue(subkey string) (string, error) {
	versionKey, err := registry.OpenKey(registry.LOCAL_MACHINE, registryKeyPath+`\`+subkey, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer versionKey.Close()

	root, _, err := versionKey.GetStringValue("MATLABROOT")
	if err != nil {
		return "", err
	}
	return root, nil
}

func (m *machineRegistry) Close() error {
	return m.key.Close()
}
