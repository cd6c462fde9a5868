package vault

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// exportOf builds exchange-format bytes from a scratch store.
func exportOf(t *testing.T, entries ...Entry) []byte {
	t.Helper()
	s := newTestStore(t)
	for _, e := range entries {
		require.NoError(t, s.Add(e))
	}
	data, err := s.Export()
	require.NoError(t, err)
	return data
}

func TestExportImport_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	totp := NewTOTP("mail", testSecret, 60)
	totp.Issuer = "Example"
	totp.Label = "alice@example.com"
	totp.Digits = 8
	require.NoError(t, s.Add(totp))
	require.NoError(t, s.Add(NewHOTP("vpn", testSecret, 17)))

	data, err := s.Export()
	require.NoError(t, err)

	fresh := newTestStore(t)
	report, err := fresh.Import(data, ConflictFail)
	require.NoError(t, err)
	require.Len(t, report, 2)
	require.Equal(t, s.List(), fresh.List())
}

func TestImport_AddsMissingAliases(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Add(NewTOTP("existing", testSecret, 30)))

	data := exportOf(t, NewTOTP("one", testSecret, 30), NewHOTP("two", testSecret, 0))
	report, err := s.Import(data, ConflictFail)
	require.NoError(t, err)
	require.Equal(t, Report{
		{Alias: "one", Action: ActionAdded},
		{Alias: "two", Action: ActionAdded},
	}, report)
	require.Equal(t, 3, s.Len())
}

func TestImport_SkipPolicy(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Add(NewTOTP("mail", testSecret, 30)))

	incoming := NewTOTP("mail", []byte("different secret!"), 60)
	data := exportOf(t, incoming, NewTOTP("new", testSecret, 30))

	report, err := s.Import(data, ConflictSkip)
	require.NoError(t, err)
	require.Equal(t, Report{
		{Alias: "mail", Action: ActionSkipped},
		{Alias: "new", Action: ActionAdded},
	}, report)

	// The existing entry survived.
	e, err := s.Get("mail")
	require.NoError(t, err)
	require.Equal(t, testSecret, e.Secret)
}

func TestImport_OverwritePolicy(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Add(NewTOTP("mail", testSecret, 30)))

	incoming := NewTOTP("mail", []byte("different secret!"), 60)
	data := exportOf(t, incoming)

	report, err := s.Import(data, ConflictOverwrite)
	require.NoError(t, err)
	require.Equal(t, Report{{Alias: "mail", Action: ActionOverwritten}}, report)

	e, err := s.Get("mail")
	require.NoError(t, err)
	require.Equal(t, []byte("different secret!"), e.Secret)
	require.Equal(t, TOTPParams{Period: 60}, e.Params)
}

func TestImport_FailPolicyIsAllOrNothing(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Add(NewTOTP("collide", testSecret, 30)))

	data := exportOf(t,
		NewTOTP("a", testSecret, 30),
		NewTOTP("collide", testSecret, 60),
		NewTOTP("b", testSecret, 30),
	)

	_, err := s.Import(data, ConflictFail)
	require.ErrorIs(t, err, ErrImportConflict)

	// Zero new entries, even for the aliases processed before the conflict.
	require.Equal(t, 1, s.Len())
	_, err = s.Get("a")
	require.ErrorIs(t, err, ErrAliasNotFound)
}

func TestImport_MalformedEntryLeavesStoreUntouched(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Add(NewTOTP("keep", testSecret, 30)))

	data := []byte(`[
		{"alias":"ok","kind":"totp","secret":"JBSWY3DP","algorithm":"SHA1","digits":6,"params":{"period":30}},
		{"alias":"bad","kind":"totp","secret":"JBSWY3DP","algorithm":"SHA1","digits":6,"params":{"period":0}}
	]`)

	_, err := s.Import(data, ConflictOverwrite)
	require.ErrorIs(t, err, ErrInvalidEntry)
	require.Equal(t, 1, s.Len())
}

func TestImport_DuplicateAliasInInput(t *testing.T) {
	s := newTestStore(t)
	data := []byte(`[
		{"alias":"x","kind":"totp","secret":"JBSWY3DP","algorithm":"SHA1","digits":6,"params":{"period":30}},
		{"alias":"x","kind":"totp","secret":"JBSWY3DP","algorithm":"SHA1","digits":6,"params":{"period":30}}
	]`)

	_, err := s.Import(data, ConflictOverwrite)
	require.ErrorIs(t, err, ErrImportConflict)
	require.Equal(t, 0, s.Len())
}

func TestConflicts(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Add(NewTOTP("b", testSecret, 30)))
	require.NoError(t, s.Add(NewTOTP("a", testSecret, 30)))

	data := exportOf(t, NewTOTP("a", testSecret, 30), NewTOTP("b", testSecret, 30), NewTOTP("c", testSecret, 30))
	conflicts, err := s.Conflicts(data)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, conflicts)
}
