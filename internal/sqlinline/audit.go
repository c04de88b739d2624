package sqlinline

const QInsertAuditEntry = `--sql e7ac714f-baee-47e4-b5c7-ab68052f3a05
insert into audit_log (id, user_id, user_name, action, cost, status, country, created_at)
values ($1, $2, $3, $4, $5, $6, nullif($7, ''), $8);
`

const QListAuditAll = `--sql 14ccc7f8-d8d3-4113-9ea5-1119b25b98e0
select id, user_id, user_name, action, cost, status, coalesce(country, ''), created_at
from audit_log
order by created_at desc, id desc
limit case when $1 > 0 then $1 else null end;
`

const QListAuditByUser = `--sql 28b74a08-e022-4c22-8f04-ee7acca516e8
select id, user_id, user_name, action, cost, status, coalesce(country, ''), created_at
from audit_log
where user_id = $1
order by created_at desc, id desc
limit case when $2 > 0 then $2 else null end;
`
