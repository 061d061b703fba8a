package git

// CloneBare runs git clone --bare for the given repository URL. On
// failure git removes the partially written destination itself, so a
// failed clone leaves nothing on disk.
func CloneBare(executor GitExecutor, repoURL, targetDir string) error {
	_, err := executor.Execute("clone", "--bare", repoURL, targetDir)
	return err
}

// ConfigureRemoteFetch sets the standard fetch refspec on a bare clone.
// `clone --bare` does not create remote-tracking refs; without this,
// origin/<branch> refs never materialize and remote-only branches are
// invisible to classification.
func ConfigureRemoteFetch(executor GitExecutor, bareDir string) error {
	_, err := executor.Execute("-C", bareDir, "config", "remote.origin.fetch",
		"+refs/heads/*:refs/remotes/origin/*")
	return err
}

// Fetch updates the bare clone's remote-tracking refs from origin.
func Fetch(executor GitExecutor, bareDir string) error {
	_, err := executor.Execute("-C", bareDir, "fetch", "origin")
	return err
}

// IsBareRepo reports whether the directory is a bare git repository.
func IsBareRepo(executor GitExecutor, dir string) bool {
	out, err := executor.Execute("-C", dir, "rev-parse", "--is-bare-repository")
	return err == nil && out == "true"
}
