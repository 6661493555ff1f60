package cli

import (
	"github.com/rualdi/rualdi/internal/aliases"
	"github.com/sirupsen/logrus"
)

// withStore는 별칭 저장소를 열어 fn을 실행하고, 어떤 경로로 끝나든 저장한다.
// 종료 시 저장 실패는 경고로만 기록하고 fn의 결과를 바꾸지 않는다.
func (a *App) withStore(fn func(s *aliases.Store) error) error {
	s, err := aliases.Open(a.Config.AliasesDir, aliases.Options{Home: a.Home})
	if err != nil {
		return err
	}
	a.Logger.WithField("path", s.Path()).Debug("aliases file opened")

	defer func() {
		dirty := s.Dirty()
		if cerr := s.Close(); cerr != nil {
			a.Logger.WithError(cerr).Warn("failed to save aliases file")
			return
		}
		if dirty {
			a.Logger.WithFields(logrus.Fields{"path": s.Path()}).Debug("aliases file saved")
		}
	}()

	return fn(s)
}
