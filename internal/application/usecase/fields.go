package usecase

func nonEmptyPtr(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}

func present(s *string) bool {
	return s != nil && *s != ""
}
