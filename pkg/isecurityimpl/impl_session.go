/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package isecurityimpl

func (s *httpSession) ID() string {
	return s.mc.sc.currentSession().ID
}

func (s *httpSession) Attribute(name string) (value string, ok bool) {
	value, ok = s.mc.sc.currentSession().Attributes[name]
	return value, ok
}

// SetAttribute the session is saved immediately
func (s *httpSession) SetAttribute(name string, value string) error {
	session := s.mc.sc.currentSession().Clone()
	if session.Attributes == nil {
		session.Attributes = map[string]string{}
	}
	session.Attributes[name] = value
	return s.save(session.Attributes)
}

func (s *httpSession) RemoveAttribute(name string) error {
	session := s.mc.sc.currentSession().Clone()
	if _, ok := session.Attributes[name]; !ok {
		return nil
	}
	delete(session.Attributes, name)
	return s.save(session.Attributes)
}

func (s *httpSession) save(attributes map[string]string) error {
	session := s.mc.sc.currentSession().Clone()
	session.Attributes = attributes
	if err := s.mc.rt.params.Sessions.Save(s.mc.Request().Context(), session); err != nil {
		return err
	}
	s.mc.sc.setSession(&session)
	return nil
}
