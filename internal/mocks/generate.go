package mocks

//go:generate mockery --name UserStore --srcpkg github.com/JosephJoshua/posad/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name SectionStore --srcpkg github.com/JosephJoshua/posad/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name ProductStore --srcpkg github.com/JosephJoshua/posad/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name Sender --srcpkg github.com/JosephJoshua/posad/internal/messaging --output ./messaging --outpkg messagingmocks --with-expecter
