package deps

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected Spec
	}{
		{
			name:  "pinned package",
			input: "pytest==2.9.2",
			expected: Spec{
				Raw:        "pytest==2.9.2",
				Kind:       KindPackage,
				Name:       "pytest",
				Constraint: "==2.9.2",
			},
		},
		{
			name:  "unpinned package",
			input: "six",
			expected: Spec{
				Raw:  "six",
				Kind: KindPackage,
				Name: "six",
			},
		},
		{
			name:  "minimum version constraint",
			input: "python-neutronclient>=4.1.1",
			expected: Spec{
				Raw:        "python-neutronclient>=4.1.1",
				Kind:       KindPackage,
				Name:       "python-neutronclient",
				Constraint: ">=4.1.1",
			},
		},
		{
			name:  "requirements file",
			input: "-r{toxinidir}/requirements.txt",
			expected: Spec{
				Raw:  "-r{toxinidir}/requirements.txt",
				Kind: KindRequirements,
				Path: "{toxinidir}/requirements.txt",
			},
		},
		{
			name:  "requirements file with space",
			input: "-r requirements.txt",
			expected: Spec{
				Raw:  "-r requirements.txt",
				Kind: KindRequirements,
				Path: "requirements.txt",
			},
		},
		{
			name:  "vcs reference with ref and egg",
			input: "git+https://github.com/openstack/python-muranoclient.git@master#egg=python-muranoclient",
			expected: Spec{
				Raw:  "git+https://github.com/openstack/python-muranoclient.git@master#egg=python-muranoclient",
				Kind: KindVCS,
				URL:  "https://github.com/openstack/python-muranoclient.git",
				Ref:  "master",
				Egg:  "python-muranoclient",
			},
		},
		{
			name:  "vcs reference without ref",
			input: "git+https://github.com/openstack/ceilometer.git#egg=ceilometer",
			expected: Spec{
				Raw:  "git+https://github.com/openstack/ceilometer.git#egg=ceilometer",
				Kind: KindVCS,
				URL:  "https://github.com/openstack/ceilometer.git",
				Egg:  "ceilometer",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, Parse(tt.input))
		})
	}
}

func TestParseAllPreservesOrder(t *testing.T) {
	t.Parallel()

	specs := ParseAll([]string{
		"-r{toxinidir}/requirements.txt",
		"pytest==2.9.2",
		"git+https://github.com/openstack/ironic.git@master#egg=ironic",
	})
	require.Len(t, specs, 3)
	require.Equal(t, KindRequirements, specs[0].Kind)
	require.Equal(t, KindPackage, specs[1].Kind)
	require.Equal(t, KindVCS, specs[2].Kind)
}

func TestPipArgs(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"-r", "reqs.txt"}, Parse("-r reqs.txt").PipArgs())
	require.Equal(t, []string{"pytest==2.9.2"}, Parse("pytest==2.9.2").PipArgs())
	require.Equal(t,
		[]string{"git+https://github.com/openstack/ironic.git@master#egg=ironic"},
		Parse("git+https://github.com/openstack/ironic.git@master#egg=ironic").PipArgs())
}

func TestGithubOwnerRepo(t *testing.T) {
	t.Parallel()

	owner, repo, err := githubOwnerRepo("https://github.com/openstack/python-muranoclient.git")
	require.NoError(t, err)
	require.Equal(t, "openstack", owner)
	require.Equal(t, "python-muranoclient", repo)

	_, _, err = githubOwnerRepo("https://git.example.com/some/repo.git")
	require.Error(t, err)
}
